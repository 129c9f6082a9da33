// Package pool holds the curated candidate prompt list and the duplicate
// filtering applied before ranking. The list is compiled into the binary and
// never mutated at runtime; ranking code receives it by injection so it can
// be swapped without touching the engine.
package pool

import "strings"

// candidates is the curated list of high-potential prompts spanning varied
// business and technical topics. Insertion order is preserved and acts as the
// tie-break for equal similarity scores downstream.
var candidates = []string{
	"Best practices for user experience design",
	"How to optimize website performance",
	"Effective content marketing strategies",
	"Mobile-first design principles",
	"SEO optimization techniques",
	"Customer retention strategies",
	"A/B testing methodologies",
	"Conversion rate optimization",
	"Social media engagement tactics",
	"Email marketing best practices",
	"Data analytics and insights",
	"Brand identity development",
	"User interface design trends",
	"Customer feedback collection methods",
	"Product launch strategies",
	"Digital marketing automation",
	"Website accessibility standards",
	"E-commerce optimization",
	"Content creation workflows",
	"Lead generation techniques",
	"Customer journey mapping",
	"Competitive analysis methods",
	"Growth hacking strategies",
	"User onboarding optimization",
	"Cross-platform integration",
	"Performance monitoring tools",
	"Security best practices",
	"API design principles",
	"Database optimization",
	"Cloud infrastructure setup",
	"DevOps implementation",
	"Agile development methodologies",
	"Code review processes",
	"Testing automation strategies",
	"Documentation best practices",
	"Team collaboration tools",
	"Project management techniques",
	"Quality assurance processes",
	"Continuous integration setup",
	"Deployment strategies",
	"Monitoring and alerting",
	"Scalability planning",
	"Backup and recovery",
	"Incident response procedures",
	"Technical debt management",
	"Code refactoring techniques",
	"Performance profiling",
	"Security vulnerability assessment",
	"User authentication systems",
	"Data privacy compliance",
	"GDPR implementation",
	"Cookie policy management",
	"Terms of service optimization",
	"Privacy policy creation",
	"Legal compliance checking",
	"Risk assessment procedures",
	"Business continuity planning",
	"Disaster recovery strategies",
	"Vendor management processes",
	"Contract negotiation tactics",
	"Budget planning methods",
	"Financial forecasting",
	"Revenue optimization",
	"Cost reduction strategies",
	"Profit margin analysis",
	"Investment decision making",
	"Market research techniques",
	"Customer segmentation",
	"Persona development",
	"Value proposition design",
	"Pricing strategy optimization",
	"Sales funnel optimization",
	"Customer support automation",
	"Help desk implementation",
	"Knowledge base creation",
	"FAQ optimization",
	"Chatbot development",
	"Live chat integration",
	"Community building strategies",
	"User-generated content",
	"Influencer marketing",
	"Partnership development",
	"Affiliate program setup",
	"Referral system design",
	"Loyalty program creation",
	"Reward system implementation",
	"Gamification strategies",
	"User engagement metrics",
	"Retention rate optimization",
	"Churn reduction techniques",
	"Customer lifetime value",
	"Revenue per user optimization",
	"Market penetration strategies",
	"Brand awareness campaigns",
	"Thought leadership content",
	"Industry trend analysis",
	"Innovation management",
	"Technology adoption",
	"Digital transformation",
	"Process automation",
	"Workflow optimization",
	"Resource allocation",
	"Time management strategies",
	"Productivity enhancement",
	"Remote work optimization",
	"Team building activities",
}

// Default returns a copy of the compiled-in candidate pool.
func Default() []string {
	out := make([]string, len(candidates))
	copy(out, candidates)
	return out
}

// Normalize returns the form used for duplicate comparison:
// lowercase with surrounding whitespace trimmed.
func Normalize(prompt string) string {
	return strings.ToLower(strings.TrimSpace(prompt))
}

// Unused filters pool down to candidates whose normalized form does not
// appear in existing. Pool order is preserved.
func Unused(pool, existing []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		seen[Normalize(p)] = struct{}{}
	}

	unused := make([]string, 0, len(pool))
	for _, c := range pool {
		if _, ok := seen[Normalize(c)]; !ok {
			unused = append(unused, c)
		}
	}
	return unused
}
